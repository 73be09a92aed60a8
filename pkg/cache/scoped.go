package cache

// ScopedKeyer prefixes every key produced by an inner [Keyer].
//
// The CLI scopes keys by API base URL so that pointing --api-url at a mirror
// does not serve responses cached from the public endpoint:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "mirror.local:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with prefix. A nil inner uses [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// HTTPKey implements [Keyer].
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// ViewKey implements [Keyer].
func (k *ScopedKeyer) ViewKey(name string, opts ViewKeyOpts) string {
	return k.prefix + k.inner.ViewKey(name, opts)
}
