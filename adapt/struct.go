package adapt

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

// StructAdapter returns an Adapter that converts a struct into a string-keyed
// tree of its exported fields, each recursively adapted. Field names honor
// json tag renames; a json:"-" tag omits the field.
//
// The Encoder applies this adapter automatically to struct values with no
// registered adapter, so it rarely needs explicit registration.
func StructAdapter() Adapter {
	return structAdapter{}
}

type structAdapter struct{}

var _ Adapter = structAdapter{}

func (structAdapter) Adapt(ctx Context, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: expected struct, got %T", ErrMismatchedValue, v)
	}

	plans := plansFor(rv.Type())
	out := make(map[string]any, len(plans))
	for _, p := range plans {
		av, err := ctx.Adapt(rv.Field(p.index).Interface())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", p.name, err)
		}
		out[p.name] = av
	}
	return out, nil
}

// fieldPlan describes how to emit a single struct field.
type fieldPlan struct {
	index int    // field index in the struct
	name  string // output key after tag renames
}

// planCache caches field plans per struct type.
var planCache sync.Map // map[reflect.Type][]fieldPlan

// plansFor returns cached field plans for rt, building them on first use.
func plansFor(rt reflect.Type) []fieldPlan {
	if cached, ok := planCache.Load(rt); ok {
		return cached.([]fieldPlan)
	}
	plans := buildPlans(rt)
	actual, _ := planCache.LoadOrStore(rt, plans)
	return actual.([]fieldPlan)
}

// buildPlans derives field plans from sentinel metadata.
func buildPlans(rt reflect.Type) []fieldPlan {
	spec := structMetadata(rt)
	plans := make([]fieldPlan, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		if len(field.Index) != 1 {
			continue
		}
		name := field.Name
		if tag, ok := field.Tags["json"]; ok {
			tagName := strings.Split(tag, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		plans = append(plans, fieldPlan{index: field.Index[0], name: name})
	}
	return plans
}

// structMetadata returns sentinel metadata for rt, building it directly from
// reflection when the type has not been scanned.
func structMetadata(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
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
		spec.Fields = append(spec.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        fieldTags(sf.Tag),
		})
	}
	return spec
}

// fieldTags extracts the struct tags the adapter understands.
func fieldTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	if v, ok := tag.Lookup("json"); ok {
		tags["json"] = v
	}
	return tags
}
