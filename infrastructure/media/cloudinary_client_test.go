package media

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "abc-123", publicIDFromURL("https://res.cloudinary.com/demo/video/upload/v1/abc-123.mp4"))
	assert.Equal(t, "thumb", publicIDFromURL("https://res.cloudinary.com/demo/image/upload/thumb.png"))
	assert.Equal(t, "noext", publicIDFromURL("https://host/path/noext"))
	assert.Equal(t, "", publicIDFromURL(""))
}

func TestSignOrdersParamsAlphabetically(t *testing.T) {
	client := &Client{
		config: &Config{APISecret: "shhh"},
		now:    func() time.Time { return time.Unix(1700000000, 0) },
	}

	got, err := client.sign(signedParams{PublicID: "vid-1", Timestamp: 1700000000})
	require.NoError(t, err)

	sum := sha1.Sum([]byte(fmt.Sprintf("public_id=vid-1&timestamp=%d%s", 1700000000, "shhh")))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
}
