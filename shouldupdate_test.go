package shouldupdate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shouldupdate"
)

type profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type user struct {
	ID      string   `json:"id"`
	Profile *profile `json:"profile"`
}

type props struct {
	User *user `json:"user"`
}

type formState struct {
	Form struct {
		IsActive bool   `json:"isActive"`
		Notes    string `json:"notes"`
	} `json:"form"`
}

// card is a component whose current props and state live on the receiver.
type card struct {
	props props
	state formState
}

func (c *card) Props() any { return c.props }
func (c *card) State() any { return c.state }

func darth() *user {
	return &user{ID: "some-id", Profile: &profile{FirstName: "Darth", LastName: "Vader"}}
}

func anakin() *user {
	return &user{ID: "some-id-2", Profile: &profile{FirstName: "Anakin", LastName: "Skywalker"}}
}

func TestShouldUpdate_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		opts     shouldupdate.Options
		expected bool
	}{
		{
			name: "deep-equal profiles with distinct references",
			opts: shouldupdate.Options{
				Dependencies: shouldupdate.Paths("user.profile"),
				Props:        map[string]any{"user": map[string]any{"id": "a", "profile": map[string]any{"firstName": "Darth"}}},
				NextProps:    map[string]any{"user": map[string]any{"id": "a", "profile": map[string]any{"firstName": "Darth"}}},
			},
			expected: false,
		},
		{
			name: "deep-equal profiles with distinct references (shallow)",
			opts: shouldupdate.Options{
				Dependencies: shouldupdate.Paths("user.profile"),
				Props:        map[string]any{"user": map[string]any{"id": "a", "profile": map[string]any{"firstName": "Darth"}}},
				NextProps:    map[string]any{"user": map[string]any{"id": "a", "profile": map[string]any{"firstName": "Darth"}}},
				Shallow:      true,
			},
			expected: true,
		},
		{
			name: "same number decoded as different kinds (shallow)",
			opts: shouldupdate.Options{
				Dependencies: shouldupdate.Paths("user.age"),
				Props:        map[string]any{"user": map[string]any{"age": 41}},
				NextProps:    map[string]any{"user": map[string]any{"age": int64(41)}},
				Shallow:      true,
			},
			expected: false,
		},
		{
			name: "first name changed",
			opts: shouldupdate.Options{
				Dependencies: shouldupdate.Paths("user.profile.firstName"),
				Props:        props{User: darth()},
				NextProps:    props{User: anakin()},
			},
			expected: true,
		},
		{
			name: "state flag flipped",
			opts: shouldupdate.Options{
				StateDependencies: shouldupdate.Paths("form.isActive"),
				State:             map[string]any{"form": map[string]any{"isActive": false}},
				NextState:         map[string]any{"form": map[string]any{"isActive": true}},
			},
			expected: true,
		},
		{
			name: "no dependencies at all",
			opts: shouldupdate.Options{
				Props:     props{User: darth()},
				NextProps: props{User: anakin()},
				State:     map[string]any{"a": 1},
				NextState: map[string]any{"a": 2},
			},
			expected: false,
		},
		{
			name: "state changed but props did not",
			opts: shouldupdate.Options{
				Dependencies:      shouldupdate.Paths("user.profile.firstName"),
				Props:             props{User: darth()},
				NextProps:         props{User: darth()},
				StateDependencies: shouldupdate.Paths("form.isActive"),
				State:             map[string]any{"form": map[string]any{"isActive": false}},
				NextState:         map[string]any{"form": map[string]any{"isActive": true}},
			},
			expected: true,
		},
		{
			name: "explicit key path into a list",
			opts: shouldupdate.Options{
				Dependencies: []shouldupdate.Path{shouldupdate.PathOf("todos", 1, "done")},
				Props:        map[string]any{"todos": []any{map[string]any{"done": true}, map[string]any{"done": false}}},
				NextProps:    map[string]any{"todos": []any{map[string]any{"done": true}, map[string]any{"done": true}}},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shouldupdate.ShouldUpdate(tt.opts))
		})
	}
}

func TestShouldUpdate_ShallowReusedReference(t *testing.T) {
	u := darth()
	next := *u // new user value, same profile pointer
	next.Profile.FirstName = "Test"

	opts := shouldupdate.Options{
		Dependencies: shouldupdate.Paths("user.profile"),
		Props:        props{User: u},
		NextProps:    props{User: &next},
		Shallow:      true,
	}
	assert.False(t, shouldupdate.ShouldUpdate(opts))

	opts.Props = props{User: darth()}
	opts.Shallow = false
	assert.True(t, shouldupdate.ShouldUpdate(opts))
}

func TestExplain(t *testing.T) {
	change, changed := shouldupdate.Explain(shouldupdate.Options{
		Dependencies: shouldupdate.Paths("user.id", "user.profile.lastName"),
		Props:        props{User: darth()},
		NextProps:    props{User: anakin()},
	})

	assert.True(t, changed)
	assert.Equal(t, "user.id", change.Path.String())
	assert.Equal(t, "some-id", change.Before)
	assert.Equal(t, "some-id-2", change.After)
}

func TestCreateShouldUpdate(t *testing.T) {
	hook := shouldupdate.CreateShouldUpdate(shouldupdate.Config{
		Dependencies:      shouldupdate.Paths("user.profile.firstName", "user.profile.lastName"),
		StateDependencies: shouldupdate.Paths("form.isActive"),
	})

	c := &card{props: props{User: darth()}}

	assert.True(t, hook(c, props{User: anakin()}, c.state), "props changed")
	assert.False(t, hook(c, props{User: darth()}, c.state), "nothing changed")

	active := c.state
	active.Form.IsActive = true
	assert.True(t, hook(c, props{User: darth()}, active), "state changed")

	otherID := darth()
	otherID.ID = "some-id-2"
	assert.False(t, hook(c, props{User: otherID}, c.state), "only an unwatched prop changed")
}

func TestCreateShouldUpdate_EquivalentToDirectCall(t *testing.T) {
	cfg := shouldupdate.Config{
		Dependencies:      shouldupdate.Paths("user.profile"),
		StateDependencies: shouldupdate.Paths("form"),
		Shallow:           true,
		Extra:             map[string]any{"displayName": "Card"},
	}
	hook := shouldupdate.CreateShouldUpdate(cfg)

	shared := darth()
	receivers := []shouldupdate.Component{
		&card{props: props{User: shared}},
		shouldupdate.NewSnapshot(props{User: darth()}, formState{}),
	}
	nextProps := []any{props{User: shared}, props{User: anakin()}, nil}

	for _, self := range receivers {
		for _, next := range nextProps {
			direct := shouldupdate.ShouldUpdate(shouldupdate.Options{
				Dependencies:      cfg.Dependencies,
				StateDependencies: cfg.StateDependencies,
				Shallow:           cfg.Shallow,
				Props:             self.Props(),
				NextProps:         next,
				State:             self.State(),
				NextState:         formState{},
			})
			assert.Equal(t, direct, hook(self, next, formState{}))
		}
	}
}

func TestHook_Bind(t *testing.T) {
	hook := shouldupdate.CreateShouldUpdate(shouldupdate.Config{
		StateDependencies: shouldupdate.Paths("form.notes"),
	})
	c := &card{}
	shouldComponentUpdate := hook.Bind(c)

	var next formState
	next.Form.Notes = "draft"
	assert.True(t, shouldComponentUpdate(nil, next))

	c.state = next
	assert.False(t, shouldComponentUpdate(nil, next), "bound hook reads the receiver at call time")
}
