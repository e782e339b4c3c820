// Package jsontree parses JSON into a typed, order-preserving tree.
//
// Unlike decoding into map[string]any, the tree keeps object keys in document
// order, keeps the literal text of numbers and can tell integer literals from
// other numbers. That is what a format-aware importer needs to map JSON onto
// a tabular document without reordering columns or reformatting values.
//
//	root, err := jsontree.Parse(jsontree.NewBuffer(data))
//	if err != nil {
//	    var se *jsontree.SyntaxError
//	    if errors.As(err, &se) {
//	        log.Printf("line %d: %s", se.Line, se.Msg)
//	    }
//	    return err
//	}
//	for i := 0; i < root.Len(); i++ {
//	    fmt.Println(root.Key(i), root.ObjectValue(i).Type())
//	}
package jsontree
