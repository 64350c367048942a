package value

// Object is the mapping variant of the value union. It keeps keys in
// insertion order so that completed payloads render and iterate
// deterministically.
type Object struct {
	keys  []string
	items map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{
		items: make(map[string]Value),
	}
}

// Value wraps the object in a Value. A nil object becomes Null.
func (o *Object) Value() Value {
	if o == nil {
		return Null()
	}
	return Value{kind: KindObject, obj: o}
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Has reports whether the key is present. Presence is purely about the key:
// a key mapped to Null is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.items[key]
	return ok
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Null(), false
	}
	v, ok := o.items[key]
	if !ok {
		return Null(), false
	}
	return v, true
}

// Set stores the value under key. New keys are appended to the key order;
// existing keys keep their position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.items[key] = v
}

// Delete removes the key if present.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.items[key]; !ok {
		return
	}
	delete(o.items, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Clone returns a shallow copy: entry values are shared, but Set and Delete
// on the clone do not affect the original. Completion clones before
// inserting defaults so callers' payloads are never mutated.
func (o *Object) Clone() *Object {
	if o == nil {
		return NewObject()
	}
	c := &Object{
		keys:  make([]string, len(o.keys)),
		items: make(map[string]Value, len(o.items)),
	}
	copy(c.keys, o.keys)
	for k, v := range o.items {
		c.items[k] = v
	}
	return c
}
