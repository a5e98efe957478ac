// Package models defines domain entities and persistence interfaces for the playhead API service.
//
// The package contains two categories of types:
//
// 1. Transient projections: normalized views of catalog provider data, never persisted
//   - [Track] : normalized song metadata (search results, related tracks, playlist items)
//   - [TrackDetail] : full track metadata with thumbnail/description fallbacks applied
//   - [TrackPage] : track detail plus its related tracks, the cached unit for track lookups
//   - [SearchResult] : normalized search response, the cached unit for searches
//
// 2. Persistent entities: database-backed models with full lifecycle management
//   - [User] : registered accounts with hashed credentials
//   - [Playlist] : per-user named track lists with exclusive owner mutation
//
// All persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
