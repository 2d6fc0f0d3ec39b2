package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skn143/lifelessons/internal/domain/contract"
)

// parseObjectID maps a malformed hex id onto the shared invalid-id
// sentinel so handlers can answer Bad Request uniformly.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", contract.ErrInvalidID, id)
	}
	return oid, nil
}
