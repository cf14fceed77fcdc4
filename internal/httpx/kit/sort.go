package kit

import (
	"strings"

	"planforge/ent"
	"planforge/ent/feature"
	"planforge/ent/project"

	"github.com/samber/lo"
)

type projectSortApplier struct {
	Asc  func(*ent.ProjectQuery) *ent.ProjectQuery
	Desc func(*ent.ProjectQuery) *ent.ProjectQuery
}

// ProjectSortWhitelist defines allowed sort fields and their query modifiers for projects
var ProjectSortWhitelist = map[string]projectSortApplier{
	"created_at": {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldCreatedAt)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldCreatedAt)) }},
	"updated_at": {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldUpdatedAt)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldUpdatedAt)) }},
	"name":       {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldName)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldName)) }},
	"id":         {Asc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Asc(project.FieldID)) }, Desc: func(q *ent.ProjectQuery) *ent.ProjectQuery { return q.Order(ent.Desc(project.FieldID)) }},
}

type featureSortApplier struct {
	Asc  func(*ent.FeatureQuery) *ent.FeatureQuery
	Desc func(*ent.FeatureQuery) *ent.FeatureQuery
}

// FeatureSortWhitelist defines allowed sort fields and their query modifiers for features
var FeatureSortWhitelist = map[string]featureSortApplier{
	"created_at": {Asc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Asc(feature.FieldCreatedAt)) }, Desc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Desc(feature.FieldCreatedAt)) }},
	"updated_at": {Asc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Asc(feature.FieldUpdatedAt)) }, Desc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Desc(feature.FieldUpdatedAt)) }},
	"title":      {Asc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Asc(feature.FieldTitle)) }, Desc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Desc(feature.FieldTitle)) }},
	"id":         {Asc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Asc(feature.FieldID)) }, Desc: func(q *ent.FeatureQuery) *ent.FeatureQuery { return q.Order(ent.Desc(feature.FieldID)) }},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyProjectSort applies a validated sort spec to an ent ProjectQuery
func ApplyProjectSort(q *ent.ProjectQuery, s string) (*ent.ProjectQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := ProjectSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}

// ApplyFeatureSort applies a validated sort spec to an ent FeatureQuery
func ApplyFeatureSort(q *ent.FeatureQuery, s string) (*ent.FeatureQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := FeatureSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
