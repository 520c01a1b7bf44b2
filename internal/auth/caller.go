package auth

import "github.com/gin-gonic/gin"

const callerKey = "caller"

// Caller is the resolved identity of an authenticated request. Requests
// without one are anonymous.
type Caller struct {
	ID string
}

// CallerFrom returns the caller of the request and whether there is one.
func CallerFrom(c *gin.Context) (Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return Caller{}, false
	}
	caller, ok := v.(Caller)
	return caller, ok && caller.ID != ""
}

func setCaller(c *gin.Context, caller Caller) {
	c.Set(callerKey, caller)
}
