package respond

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("relation \"project\" does not exist"), "relation \"project\" does not exist"},
		{
			"url dsn",
			errors.New("dial postgres://admin:s3cret@db:5432/highways failed"),
			"dial postgres://admin:****@db:5432/highways failed",
		},
		{
			"keyword dsn",
			errors.New("connect host=db user=admin password=s3cret dbname=highways"),
			"connect host=db user=admin password=**** dbname=highways",
		},
		{
			"quoted keyword dsn",
			errors.New("password='two words' sslmode=disable"),
			"password=**** sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeError(tt.err))
		})
	}
}
