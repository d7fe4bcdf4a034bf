package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shouldupdate/internal/core/domain"
)

func TestModeOf(t *testing.T) {
	assert.Equal(t, domain.ModeShallow, domain.ModeOf(true))
	assert.Equal(t, domain.ModeDeep, domain.ModeOf(false))
	assert.Equal(t, "shallow", domain.ModeShallow.String())
	assert.Equal(t, "deep", domain.ModeDeep.String())
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "props", domain.SideProps.String())
	assert.Equal(t, "state", domain.SideState.String())
}

func TestInput_Watches(t *testing.T) {
	in := domain.Input{
		Props:       domain.NewPaths([]string{"user"}),
		State:       domain.NewPaths([]string{"form"}),
		BeforeProps: "p0",
		AfterProps:  "p1",
		BeforeState: "s0",
		AfterState:  "s1",
	}

	var got []domain.Watch
	for w := range in.Watches() {
		got = append(got, w)
	}

	assert.Len(t, got, 2)
	assert.Equal(t, domain.SideProps, got[0].Side)
	assert.Equal(t, "p0", got[0].Before)
	assert.Equal(t, "p1", got[0].After)
	assert.Equal(t, domain.SideState, got[1].Side)
	assert.Equal(t, "s0", got[1].Before)
	assert.Equal(t, "s1", got[1].After)
}

func TestInput_Watches_StopsEarly(t *testing.T) {
	in := domain.Input{}

	count := 0
	for range in.Watches() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestNewDependencies_Copies(t *testing.T) {
	props := domain.NewPaths([]string{"user"})
	extra := map[string]any{"name": "profile-card"}

	deps := domain.NewDependencies(props, nil, domain.ModeShallow, extra)

	props[0] = domain.NewPath("changed")
	extra["name"] = "changed"

	assert.Equal(t, "user", deps.Props[0].String())
	assert.Equal(t, "profile-card", deps.Extra["name"])
	assert.Nil(t, deps.State)
	assert.Equal(t, domain.ModeShallow, deps.Mode)
}
