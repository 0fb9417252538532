package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fleetWith provisions one server per entry of loads and fills it with those task durations.
func fleetWith(t *testing.T, capacity int, loads ...[]int) *Fleet {
	t.Helper()
	f := newTestFleet(t, capacity)
	for _, tasks := range loads {
		s := f.Provision()
		for _, d := range tasks {
			require.True(t, s.Add(d))
		}
	}
	return f
}

func TestLongestRemaining_SkipsFullServer(t *testing.T) {
	// GIVEN a full first server and a half-used second one
	f := fleetWith(t, 2, []int{1, 3}, []int{2})

	// WHEN placing
	d := NewPlacementPolicy("longest-remaining").Place(f)

	// THEN the second server is chosen and nothing is provisioned
	assert.Same(t, f.At(1), d.Target)
	assert.False(t, d.Provisioned)
	assert.Equal(t, 2, f.Len())
}

func TestLongestRemaining_KeepsFirstWhenLaterHasShorterTask(t *testing.T) {
	f := fleetWith(t, 2, []int{3}, []int{2})
	d := NewPlacementPolicy("longest-remaining").Place(f)
	assert.Same(t, f.At(0), d.Target)
}

func TestLongestRemaining_PrefersLongerRemainingTask(t *testing.T) {
	// GIVEN available servers with max remaining 3 then 5
	f := fleetWith(t, 3, []int{3}, []int{5, 1})

	// THEN the one with 5 wins
	d := NewPlacementPolicy("longest-remaining").Place(f)
	assert.Same(t, f.At(1), d.Target)
	assert.Equal(t, "longest-remaining (max=5)", d.Reason)
}

func TestLongestRemaining_PrefersEmptyServer(t *testing.T) {
	// GIVEN an available server with max 3 followed by an empty one
	f := fleetWith(t, 2, []int{3}, nil)

	d := NewPlacementPolicy("longest-remaining").Place(f)
	assert.Same(t, f.At(1), d.Target)
}

func TestLongestRemaining_EmptyCandidateIsKeptAgainstLaterNonEmpty(t *testing.T) {
	// GIVEN an empty server first, then one with max 2
	f := fleetWith(t, 2, nil, []int{2})

	// THEN the later server replaces the empty one because 2 > 0
	d := NewPlacementPolicy("longest-remaining").Place(f)
	assert.Same(t, f.At(1), d.Target)
}

func TestLongestRemaining_FullLastServer_ProvisionsAndSelectsNewServer(t *testing.T) {
	// GIVEN a single full server
	f := fleetWith(t, 2, []int{1, 3})

	// WHEN placing
	d := NewPlacementPolicy("longest-remaining").Place(f)

	// THEN a new server is appended and, being visited by the same scan, selected
	require.Equal(t, 2, f.Len())
	assert.True(t, d.Provisioned)
	assert.Same(t, f.At(1), d.Target)
	assert.True(t, d.Target.IsEmpty())
}

func TestLongestRemaining_FullServerNotLast_DoesNotProvision(t *testing.T) {
	f := fleetWith(t, 2, []int{1, 3}, []int{4})
	d := NewPlacementPolicy("longest-remaining").Place(f)
	assert.False(t, d.Provisioned)
	assert.Equal(t, 2, f.Len())
}

func TestLongestRemaining_EmptyFleet_NoCandidate(t *testing.T) {
	f := newTestFleet(t, 2)
	d := NewPlacementPolicy("longest-remaining").Place(f)
	assert.Nil(t, d.Target)
	assert.Equal(t, 0, f.Len(), "empty fleets are bootstrapped by the simulator, not the policy")
}

func TestLongestRemaining_SequentialPlacements(t *testing.T) {
	// GIVEN servers holding [3] and [2]
	f := fleetWith(t, 2, []int{3}, []int{2})
	policy := NewPlacementPolicy("")

	// WHEN two tasks of duration 5 are placed one after the other
	for i := 0; i < 2; i++ {
		d := policy.Place(f)
		require.NotNil(t, d.Target)
		require.True(t, d.Target.Add(5))
	}

	// THEN each server received one
	assert.Equal(t, []int{3, 5}, f.At(0).Tasks())
	assert.Equal(t, []int{2, 5}, f.At(1).Tasks())
}

func TestFirstFit_PicksFirstAvailable(t *testing.T) {
	f := fleetWith(t, 2, []int{1, 1}, []int{9}, nil)
	d := NewPlacementPolicy("first-fit").Place(f)
	assert.Same(t, f.At(1), d.Target)
}

func TestLeastLoaded_PicksFewestTasks_TiesToFirst(t *testing.T) {
	f := fleetWith(t, 3, []int{1, 1}, []int{4}, []int{7})
	d := NewPlacementPolicy("least-loaded").Place(f)
	assert.Same(t, f.At(1), d.Target)
	assert.Equal(t, "least-loaded (load=1)", d.Reason)
}

func TestFallbackPolicies_ProvisionWhenAllFull(t *testing.T) {
	for _, name := range []string{"first-fit", "least-loaded"} {
		t.Run(name, func(t *testing.T) {
			f := fleetWith(t, 1, []int{2}, []int{3})
			d := NewPlacementPolicy(name).Place(f)
			require.Equal(t, 3, f.Len())
			assert.True(t, d.Provisioned)
			assert.Same(t, f.At(2), d.Target)
		})
	}
}

func TestNewPlacementPolicy_UnknownName_Panics(t *testing.T) {
	assert.Panics(t, func() { NewPlacementPolicy("random") })
}

func TestIsValidPlacementPolicy(t *testing.T) {
	for _, name := range ValidPlacementPolicyNames() {
		assert.True(t, IsValidPlacementPolicy(name), name)
	}
	assert.True(t, IsValidPlacementPolicy(""))
	assert.False(t, IsValidPlacementPolicy("round-robin"))
}
