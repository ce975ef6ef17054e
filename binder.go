package moniker

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/samber/lo"
	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("name")
	sentinel.Tag("name.hash")
}

// Binder reads hierarchical names out of tagged struct fields.
//
// A string field tagged `name:"/"` holds a masked data string using '/' as
// its delimiter; a []string field holds unmasked components. An empty tag
// value selects DefaultDelimiter. Adding `name.hash:"sha256"` makes the field
// part of Fingerprints.
//
//	type Route struct {
//		Path  string   `json:"path" name:"/" name.hash:"sha256"`
//		Scope []string `json:"scope" name:""`
//	}
//
// Binders are safe for concurrent use. SetHasher may be called at any time.
type Binder[T any] struct {
	plans   *bindPlans
	hashers map[HashAlgo]Hasher
	mu      sync.RWMutex
}

// bindPlans holds the field plans for a type.
type bindPlans struct {
	typeName string
	fields   []bindPlan
}

// bindPlan describes how to read a single field.
type bindPlan struct {
	index      []int  // reflect.Value.FieldByIndexErr access path
	name       string // dotted field path, used as the result key
	delimiter  rune
	components bool // []string field
	hash       HashAlgo
}

// NewBinder scans T and builds its field plans.
func NewBinder[T any]() (*Binder[T], error) {
	plans, err := buildBindPlans[T]()
	if err != nil {
		return nil, err
	}

	emitBinderCreated(context.Background(), plans.typeName, len(plans.fields))

	return &Binder[T]{
		plans:   plans,
		hashers: builtinHashers(),
	}, nil
}

// SetHasher registers h for algo, replacing any builtin. A nil hasher removes
// the registration.
func (b *Binder[T]) SetHasher(algo HashAlgo, h Hasher) *Binder[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	if h == nil {
		delete(b.hashers, algo)
		return b
	}
	b.hashers[algo] = h
	return b
}

// Fields returns the dotted paths of every bound field, in declaration order.
func (b *Binder[T]) Fields() []string {
	return lo.Map(b.plans.fields, func(p bindPlan, _ int) string {
		return p.name
	})
}

// Names builds a Name for every bound field of obj. Fields behind a nil
// pointer are skipped. A Nameable obj supplies its own names.
func (b *Binder[T]) Names(obj *T) (map[string]Name, error) {
	if obj == nil {
		return nil, violate(ErrIllegalArgument, "names", "object must not be nil")
	}
	if o, ok := any(obj).(Nameable); ok {
		return o.Names()
	}
	rv := reflect.ValueOf(obj).Elem()
	out := make(map[string]Name, len(b.plans.fields))
	for _, p := range b.plans.fields {
		fv, ok := fieldValue(rv, p.index)
		if !ok {
			continue
		}
		n, err := p.build(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", p.name, err)
		}
		out[p.name] = n
	}
	return out, nil
}

// Validate checks the masking grammar of every bound string field and reports
// all violations. Component fields always validate. For a Nameable type it
// reports the error from Names.
func (b *Binder[T]) Validate(obj *T) error {
	if obj == nil {
		return violate(ErrIllegalArgument, "validate", "object must not be nil")
	}
	if o, ok := any(obj).(Nameable); ok {
		_, err := o.Names()
		return err
	}
	rv := reflect.ValueOf(obj).Elem()
	var errs []error
	for _, p := range b.plans.fields {
		if p.components {
			continue
		}
		fv, ok := fieldValue(rv, p.index)
		if !ok {
			continue
		}
		if cond := maskViolation(fv.String(), p.delimiter, true); cond != "" {
			errs = append(errs, violate(ErrIllegalArgument, "validate", fmt.Sprintf("field %s: %s", p.name, cond)))
		}
	}
	return errors.Join(errs...)
}

// Fingerprints hashes every field tagged with name.hash.
func (b *Binder[T]) Fingerprints(obj *T) (map[string]string, error) {
	names, err := b.Names(obj)
	if err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]string)
	for _, p := range b.plans.fields {
		if p.hash == "" {
			continue
		}
		n, ok := names[p.name]
		if !ok {
			continue
		}
		h, ok := b.hashers[p.hash]
		if !ok {
			return nil, newConfigError(ErrMissingHasher, string(p.hash), p.name)
		}
		sum, err := fingerprint(h, n)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", p.name, err)
		}
		out[p.name] = sum
	}
	return out, nil
}

func (p bindPlan) build(fv reflect.Value) (Name, error) {
	if p.components {
		components := make([]string, fv.Len())
		for i := range components {
			components[i] = fv.Index(i).String()
		}
		return NewArrayName(components, WithDelimiter(p.delimiter))
	}
	return NewStringName(fv.String(), WithDelimiter(p.delimiter))
}

// fieldValue follows index through nested structs and struct pointers.
func fieldValue(rv reflect.Value, index []int) (reflect.Value, bool) {
	fv, err := rv.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, false
	}
	return fv, true
}

// buildBindPlans creates field plans for type T by scanning struct tags.
func buildBindPlans[T any]() (*bindPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &bindPlans{
		typeName: spec.TypeName,
	}

	if err := buildBindPlansRecursive(plans, spec, nil, "", map[reflect.Type]bool{}); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildBindPlansRecursive processes fields and nested structs. seen guards
// against self-referencing types.
func buildBindPlansRecursive(plans *bindPlans, spec sentinel.Metadata, parentIndex []int, namePrefix string, seen map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		delim, tagged := field.Tags["name"]
		if !tagged {
			if nested := nestedStruct(field); nested != nil && !seen[nested] {
				if nestedSpec := scanNestedType(nested); nestedSpec != nil {
					seen[nested] = true
					err := buildBindPlansRecursive(plans, *nestedSpec, fullIndex, fullName, seen)
					delete(seen, nested)
					if err != nil {
						return err
					}
				}
			}
			if _, ok := field.Tags["name.hash"]; ok {
				return newConfigError(ErrInvalidTag, "name.hash without name", fullName)
			}
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		if !isString && !isStringSlice {
			return newConfigError(ErrInvalidTag, "name on "+rt.String(), fullName)
		}

		plan := bindPlan{
			index:      fullIndex,
			name:       fullName,
			delimiter:  DefaultDelimiter,
			components: isStringSlice,
		}

		if delim != "" {
			d, err := ParseDelimiter(delim)
			if err != nil {
				return newConfigError(ErrInvalidTag, delim, fullName)
			}
			plan.delimiter = d
		}

		if algo, ok := field.Tags["name.hash"]; ok {
			if !IsValidHashAlgo(HashAlgo(algo)) {
				return newConfigError(ErrInvalidTag, algo, fullName)
			}
			plan.hash = HashAlgo(algo)
		}

		plans.fields = append(plans.fields, plan)
	}
	return nil
}

// nestedStruct returns the struct type behind a struct or struct pointer
// field, or nil.
func nestedStruct(field sentinel.FieldMetadata) reflect.Type {
	switch field.Kind {
	case sentinel.KindStruct:
		return field.ReflectType
	case sentinel.KindPointer:
		if field.ReflectType.Elem().Kind() == reflect.Struct {
			return field.ReflectType.Elem()
		}
	}
	return nil
}

// scanNestedType returns metadata for a nested struct type, preferring
// sentinel's cache.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        nameTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// nameTags extracts the binder's tags from a struct tag.
func nameTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, key := range []string{"name", "name.hash"} {
		if val, ok := tag.Lookup(key); ok {
			tags[key] = val
		}
	}
	return tags
}
