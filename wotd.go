// Package wotd delivers a word-of-the-day as a text message. It fetches
// the latest entry from a dictionary feed, extracts a structured word
// record from the entry's loosely structured markup, formats a
// length-bounded plain-text message, and hands it to a carrier
// email-to-SMS gateway.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gofeed/, goquery/, mail/).
package wotd
