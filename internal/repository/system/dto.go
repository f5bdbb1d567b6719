package system

import (
	"encoding/json"
	"fmt"
	"strconv"

	domsys "github.com/kailas-cloud/sysdisco/internal/domain/system"
)

// systemToHash converts a domain Document to a map for HSET.
func systemToHash(d *domsys.Document) (map[string]string, error) {
	tags, err := json.Marshal(nonNil(d.Tags()))
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	deps, err := json.Marshal(nonNil(d.Dependencies()))
	if err != nil {
		return nil, fmt.Errorf("marshal dependencies: %w", err)
	}
	return map[string]string{
		"id":           d.ID(),
		"project_id":   d.ProjectID(),
		"name":         d.Name(),
		"category":     d.Category(),
		"tags":         string(tags),
		"content":      d.Content(),
		"dependencies": string(deps),
		"created_at":   strconv.FormatInt(d.CreatedAt(), 10),
		"updated_at":   strconv.FormatInt(d.UpdatedAt(), 10),
	}, nil
}

// systemFromHash hydrates a domain Document from an HGETALL result map.
func systemFromHash(m map[string]string) (domsys.Document, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return domsys.Document{}, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := strconv.ParseInt(m["updated_at"], 10, 64)
	if err != nil {
		return domsys.Document{}, fmt.Errorf("invalid updated_at: %w", err)
	}

	attrs := domsys.Attrs{Name: m["name"], Category: m["category"], Content: m["content"]}
	if attrs.Tags, err = decodeList(m["tags"]); err != nil {
		return domsys.Document{}, fmt.Errorf("unmarshal tags: %w", err)
	}
	if attrs.Dependencies, err = decodeList(m["dependencies"]); err != nil {
		return domsys.Document{}, fmt.Errorf("unmarshal dependencies: %w", err)
	}

	return domsys.Reconstruct(m["id"], m["project_id"], attrs, createdAt, updatedAt), nil
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

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
