package library

import "strings"

// Library is the full ordered collection of books. Insertion order is
// preserved and duplicate titles are allowed. All operations return new
// values instead of mutating shared state, so a caller always holds the
// authoritative collection explicitly.
type Library []Book

// Add appends book to the library. No deduplication is performed; the caller
// is expected to have validated the book already.
func (l Library) Add(book Book) Library {
	return append(l, book)
}

// Remove drops every book whose title equals titleQuery, ignoring case, and
// returns the filtered library along with the number of books removed. A
// count of zero means no book matched.
func (l Library) Remove(titleQuery string) (Library, int) {
	kept := make(Library, 0, len(l))
	for _, book := range l {
		if strings.EqualFold(book.Title, titleQuery) {
			continue
		}
		kept = append(kept, book)
	}
	return kept, len(l) - len(kept)
}

// Search returns the books whose title or author contains query, ignoring
// case. If year is greater than MinYear, results are additionally restricted
// to books published exactly in that year. An empty query with no year filter
// returns no results rather than the whole library.
func (l Library) Search(query string, year int) []Book {
	if query == "" && year <= MinYear {
		return nil
	}
	query = strings.ToLower(query)
	var results []Book
	for _, book := range l {
		if !strings.Contains(strings.ToLower(book.Title), query) &&
			!strings.Contains(strings.ToLower(book.Author), query) {
			continue
		}
		if year > MinYear && book.Year != year {
			continue
		}
		results = append(results, book)
	}
	return results
}
