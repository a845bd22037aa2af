package webctx

import "github.com/gin-gonic/gin"

// ownerKey is where the auth middleware stores the authenticated owner id.
const ownerKey = "studytrack.owner"

func SetOwner(c *gin.Context, ownerID string) {
	c.Set(ownerKey, ownerID)
}

func Owner(c *gin.Context) (string, bool) {
	ownerID, ok := c.Value(ownerKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}
