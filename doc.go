// Package gopaging provides page/size pagination with navigation metadata.
//
// Overview
//
// Given a collection and a requested page, gopaging computes a Metadata value
// (current page, total pages, skip/take, a bounded window of page numbers for
// navigation, previous/next pages and the "11 - 20 of 45" item range) and
// returns a Page holding exactly the items of that page. Requested pages out
// of range are clamped and empty collections give an empty page, so a page
// can always be rendered.
//
// Key concepts
//   - NewMaterializedPage: slices a collection that is already in memory.
//   - NewQueryPage / NewSourcePage: page a deferred Source by pushing count
//     and skip/take down to it. GormSource and SQLSource do this in the
//     database; SliceSource works in memory.
//   - NewStaticPage / WrapPage: republish a subset sliced elsewhere, e.g.
//     after the page crossed a JSON boundary (see RawPage, RawMetadata).
//   - Pager and RawPager: request parameters with the defaults of 25 items
//     per page and a window of 7 pages; Paginate* functions build pages
//     from them.
//
// See the examples directory for runnable programs.
package gopaging
