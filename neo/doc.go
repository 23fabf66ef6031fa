// Package neo defines the electrophysiology object model that readers
// populate: a Block of Segments, where each Segment owns analog signals,
// spike trains and epoch arrays recorded over one span of time.
//
// The model is deliberately plain: physical units are opaque tags
// (Quantity), free-form metadata goes into per-entity annotations, and
// children refer back to their owners by ID rather than by pointer so the
// graph stays acyclic.
package neo
