package cif

import (
	"strconv"

	"github.com/mhemmit/gemmi/internal/hash"
)

// Fingerprint returns an xxHash64 of the block name and of every tag and
// value in order. Blocks with equal fingerprints hold the same items.
func (b *Block) Fingerprint() uint64 {
	d := hash.NewDigest()
	b.digest(d)

	return d.Sum64()
}

// Fingerprint returns an xxHash64 over all blocks of the document. The
// Source label does not contribute.
func (d *Document) Fingerprint() uint64 {
	dg := hash.NewDigest()
	for i := range d.Blocks {
		d.Blocks[i].digest(dg)
	}

	return dg.Sum64()
}

func (b *Block) digest(d *hash.Digest) {
	d.WriteField("data_" + b.Name)
	for i := range b.Items {
		it := &b.Items[i]
		switch it.Kind {
		case ItemPair:
			d.WriteField("pair")
			d.WriteField(it.Pair.Tag)
			d.WriteField(it.Pair.Value)
		case ItemLoop:
			d.WriteField("loop")
			d.WriteField(strconv.Itoa(it.Loop.Width()))
			for _, tag := range it.Loop.Tags {
				d.WriteField(tag)
			}
			for _, v := range it.Loop.Values {
				d.WriteField(v)
			}
		}
	}
}
