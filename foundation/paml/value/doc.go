// Package value defines the in-memory model of a PAML document.
//
// A Value is one of null, bool, number, string, list or map. Numbers remember
// whether they were written as integers so that 1 and 1.0 survive a round
// trip. Maps keep keys in insertion order and reject duplicates.
//
//	b := value.NewMapBuilder()
//	_ = b.Add("name", value.String("paml"))
//	_ = b.Add("ports", value.List(value.Int(80), value.Int(443)))
//	doc := b.Build()
//
//	ports, _ := doc.Get("ports")
//	first, _ := ports.Index(0)
package value
