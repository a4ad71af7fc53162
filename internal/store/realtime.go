package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"medilog/internal/errors"
)

// Node is one child record returned by a query: the store-assigned key plus
// the raw record body.
type Node struct {
	Key string
	Raw json.RawMessage
}

// Database is the subset of the document store used by the log repositories:
// append a child record under a path and get back the assigned key, or filter
// children of a path by equality on one field.
type Database interface {
	Push(ctx context.Context, path string, record any) (string, error)
	QueryByChild(ctx context.Context, path, child, value string) ([]Node, error)
}

// RealtimeDatabase implements Database on the Firebase Realtime Database.
type RealtimeDatabase struct {
	client *db.Client
}

// NewRealtimeDatabase returns a connected Realtime Database client. An empty
// credentials file falls back to application default credentials.
func NewRealtimeDatabase(ctx context.Context, databaseURL, credentialsFile string) (*RealtimeDatabase, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect realtime database: %w", err)
	}
	return &RealtimeDatabase{client: client}, nil
}

// Push appends record as a new child of path and returns the store-assigned
// key. Not idempotent: the store generates a fresh key on every call.
func (d *RealtimeDatabase) Push(ctx context.Context, path string, record any) (string, error) {
	ref, err := d.client.NewRef(path).Push(ctx, record)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return ref.Key, nil
}

// QueryByChild returns the children of path whose child field equals value,
// in the order the store hands them back. The result is empty, never nil,
// when nothing matches.
func (d *RealtimeDatabase) QueryByChild(ctx context.Context, path, child, value string) ([]Node, error) {
	nodes, err := d.client.NewRef(path).OrderByChild(child).EqualTo(value).GetOrdered(ctx)
	if err != nil {
		return nil, classifyQueryError(err)
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		var raw json.RawMessage
		if err := n.Unmarshal(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
		}
		out = append(out, Node{Key: n.Key(), Raw: raw})
	}
	return out, nil
}

// classifyQueryError separates a query the store rejected as malformed (a 400
// response, typically a missing ".indexOn" rule) from a transport failure.
func classifyQueryError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "http error status: 400") || strings.Contains(strings.ToLower(msg), "index") {
		return fmt.Errorf("%w: %v", errors.ErrQueryRejected, err)
	}
	return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
}
