package room

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_addLogMessage(t *testing.T) {
	a := assert.New(t)

	r := NewRoom(testOptions("2"))
	for i := 0; i < 30; i++ {
		r.addLogMessage(fmt.Sprintf("line %d", i))
	}

	a.Len(r.logMessages, logMessageLimit)
	a.Equal("line 5", r.logMessages[0])
	a.Equal("line 29", r.logMessages[24])
}
