// Package geom provides the small amount of 3D geometry needed to place
// copies of chains: vectors, atom positions, 3x3 matrices and affine
// transforms made of a matrix and a translation.
package geom
