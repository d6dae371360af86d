package module

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type portSet struct {
	Zone string
}

func TestRegistry_RoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("dates", portSet{Zone: "Europe/Paris"})

	got, ok := PortsAs[portSet]("dates")
	assert.True(t, ok)
	assert.Equal(t, "Europe/Paris", got.Zone)

	_, ok = PortsAs[portSet]("views")
	assert.False(t, ok, "missing name")

	_, ok = PortsAs[string]("dates")
	assert.False(t, ok, "type mismatch")
}

func TestRegistry_ReplaceAndNames(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("views", nil)
	Register("dates", portSet{Zone: "UTC"})
	Register("dates", portSet{Zone: "Asia/Tokyo"})
	Register("meta", nil)

	assert.Equal(t, []string{"dates", "meta", "views"}, Names())
	got, _ := PortsAs[portSet]("dates")
	assert.Equal(t, "Asia/Tokyo", got.Zone)

	Reset()
	assert.Empty(t, Names())
}

func TestRegistry_Concurrent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("m%02d", i)
			Register(name, portSet{Zone: name})
			got, ok := PortsAs[portSet](name)
			assert.True(t, ok)
			assert.Equal(t, name, got.Zone)
		}()
	}
	wg.Wait()
	assert.Len(t, Names(), 32)
}
