// Package identity resolves the opaque user identities issued by the
// authentication provider into display information.
package identity

import (
	"context"
	"errors"
	"fmt"
)

// ErrUserNotFound is returned when a username does not resolve.
var ErrUserNotFound = errors.New("user not found")

// ErrUnresolvedAuthor is returned when an author of a result set is missing
// from the directory.
var ErrUnresolvedAuthor = errors.New("author not found in directory")

// User is the public summary of an identity.
type User struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	ImageURL  *string `json:"image_url"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Directory looks up users in the identity provider.
type Directory interface {
	// UserByUsername returns ErrUserNotFound when nobody has the username.
	UserByUsername(ctx context.Context, username string) (*User, error)
	// UsersByIDs returns the users it found; missing ids are omitted.
	UsersByIDs(ctx context.Context, ids []string) ([]User, error)
	SearchUsers(ctx context.Context, query string) ([]User, error)
}

// LookupAuthors resolves every distinct id with a single directory call. It
// fails if any id is missing, so callers never render a row without its author.
func LookupAuthors(ctx context.Context, dir Directory, ids []string) (map[string]User, error) {
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	authors := make(map[string]User, len(distinct))
	if len(distinct) == 0 {
		return authors, nil
	}

	users, err := dir.UsersByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		authors[u.ID] = u
	}
	for _, id := range distinct {
		if _, ok := authors[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedAuthor, id)
		}
	}
	return authors, nil
}
