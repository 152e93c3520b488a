package models

// assign copies *src into *dst when src is present. Patch Apply methods
// use it to shallow-merge only the fields named in the patch.
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
