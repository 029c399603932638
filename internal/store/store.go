package store

import (
	"context"
	"encoding/json"
)

// Collection names inside the radar document. The whole dataset lives in a
// single JSON document of named collections plus an initialization flag,
// mirroring the export format of the original dashboard.
const (
	CollectionKnowledgeAreas    = "knowledgeAreas"
	CollectionSkillCategories   = "skillCategories"
	CollectionSkills            = "skills"
	CollectionScales            = "scales"
	CollectionMembers           = "members"
	CollectionMemberProfiles    = "memberProfiles"
	CollectionMemberSkills      = "memberSkills"
	CollectionClients           = "clients"
	CollectionMemberAssignments = "memberAssignments"
)

// Store is the key-value boundary every repository is built on. Rows are
// opaque JSON objects; typing happens in the repository layer.
//
// Absent collections read as empty, never as an error. Errors are reserved
// for persistence I/O failures (unwritable file, unreachable database,
// corrupted payload).
type Store interface {
	Get(ctx context.Context, collection string) ([]json.RawMessage, error)
	Set(ctx context.Context, collection string, rows []json.RawMessage) error

	IsInitialized(ctx context.Context) (bool, error)
	MarkInitialized(ctx context.Context) error

	Close() error
}

// Document is the persisted shape shared by all drivers.
type Document struct {
	Collections   map[string][]json.RawMessage `json:"collections"`
	IsInitialized bool                         `json:"isInitialized"`
}

func NewDocument() *Document {
	return &Document{Collections: make(map[string][]json.RawMessage)}
}
