package virtual

import "time"

// page is one cached block of items. The item slice is assigned wholesale
// when the page is loaded and never partially mutated; a re-fetch replaces
// the whole page.
type page[T any] struct {
	index         int
	items         []T
	lastRefreshed time.Time
}

// pageStore keys cached pages by page index. Ownership is exclusive to one
// List; it has no locking of its own.
type pageStore[T any] struct {
	pages map[int]*page[T]
}

func newPageStore[T any]() *pageStore[T] {
	return &pageStore[T]{pages: make(map[int]*page[T])}
}

func (s *pageStore[T]) get(index int) (*page[T], bool) {
	pg, ok := s.pages[index]
	return pg, ok
}

// put inserts pg, replacing any existing page under the same index.
func (s *pageStore[T]) put(pg *page[T]) {
	s.pages[pg.index] = pg
}

func (s *pageStore[T]) remove(index int) {
	delete(s.pages, index)
}

func (s *pageStore[T]) clear() {
	s.pages = make(map[int]*page[T])
}

func (s *pageStore[T]) len() int {
	return len(s.pages)
}

// evictFunc removes every page for which shouldEvict returns true and
// reports how many pages were removed.
func (s *pageStore[T]) evictFunc(shouldEvict func(*page[T]) bool) int {
	evicted := 0
	for index, pg := range s.pages {
		if shouldEvict(pg) {
			delete(s.pages, index)
			evicted++
		}
	}
	return evicted
}
