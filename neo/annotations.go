package neo

// annotated provides the free-form annotation slot shared by all entities.
// Annotations hold out-of-model metadata (acquisition notes, channel maps,
// reader-specific extras) keyed by name.
type annotated struct {
	Annotations map[string]interface{}
}

// Annotate attaches a key/value annotation to the entity.
func (a *annotated) Annotate(key string, value interface{}) {
	if a.Annotations == nil {
		a.Annotations = make(map[string]interface{})
	}
	a.Annotations[key] = value
}

// Annotation returns the annotation for key, or nil if absent.
func (a *annotated) Annotation(key string) interface{} {
	return a.Annotations[key]
}
