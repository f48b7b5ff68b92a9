// model/book.go
package model

// Book is a catalog item. The store assigns ID on insert; Reserved only
// ever moves from false to true.
type Book struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Author   string `json:"author"`
	Reserved bool   `json:"reserved"`
}
