package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var ErrNoFieldsToUpdate = errors.New("no fields to update")

// serverManagedFields are stamped by the DAL and never accepted from a
// request body.
var serverManagedFields = []string{
	"id",
	"businessId",
	"ownerId",
	"ownerUid",
	"createdAt",
	"updatedAt",
}

// SetOptionalField adds key to fields when the optional request value was
// provided.
func SetOptionalField(fields map[string]interface{}, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}

// BindUpdateFields binds a partial update body into a field map, dropping
// any server-managed keys the client may have sent along.
func BindUpdateFields(ctx *gin.Context) (map[string]interface{}, error) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		return nil, err
	}

	for _, key := range serverManagedFields {
		delete(fields, key)
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	return fields, nil
}
