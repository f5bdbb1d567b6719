package project

import (
	"encoding/json"
	"fmt"
	"strconv"

	domproj "github.com/kailas-cloud/sysdisco/internal/domain/project"
)

// projectToHash converts a domain Project to a map for HSET.
// List fields are stored as JSON arrays.
func projectToHash(p *domproj.Project) (map[string]string, error) {
	lists := map[string][]string{
		"tech_stack":         p.TechStack(),
		"categories":         p.Categories(),
		"default_references": p.DefaultReferences(),
	}
	m := map[string]string{
		"id":          p.ID(),
		"name":        p.Name(),
		"description": p.Description(),
		"created_at":  strconv.FormatInt(p.CreatedAt(), 10),
		"updated_at":  strconv.FormatInt(p.UpdatedAt(), 10),
	}
	for k, v := range lists {
		if v == nil {
			v = []string{}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		m[k] = string(b)
	}
	return m, nil
}

// projectFromHash hydrates a domain Project from an HGETALL result map.
func projectFromHash(m map[string]string) (domproj.Project, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return domproj.Project{}, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := strconv.ParseInt(m["updated_at"], 10, 64)
	if err != nil {
		return domproj.Project{}, fmt.Errorf("invalid updated_at: %w", err)
	}

	attrs := domproj.Attrs{Name: m["name"], Description: m["description"]}
	for field, dst := range map[string]*[]string{
		"tech_stack":         &attrs.TechStack,
		"categories":         &attrs.Categories,
		"default_references": &attrs.DefaultReferences,
	} {
		if *dst, err = decodeList(m[field]); err != nil {
			return domproj.Project{}, fmt.Errorf("unmarshal %s: %w", field, err)
		}
	}

	return domproj.Reconstruct(m["id"], attrs, createdAt, updatedAt), nil
}

func decodeList(s string) ([]string, error) {
	out := []string{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}
