// Package metagen provides bulk SEO metadata generation for brand websites.
// It fetches pages from a batch of URLs, extracts their text and existing
// metadata, asks a text-generation model for improved SEO fields, and streams
// per-URL progress to the caller.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package metagen
