package annotations

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotation(t *testing.T, raw string) *Annotation {
	a := &Annotation{}
	require.NoError(t, json.Unmarshal([]byte(raw), a))
	return a
}

func TestCreatorHelpers(t *testing.T) {
	type testStruct struct {
		testName        string
		annotation      string
		uris            []string
		expectedURI     string
		expectedFound   bool
		expectedName    string
		expectedMatches bool
	}

	bareCreator := testStruct{testName: "bareCreator", annotation: `{"creator":"u1"}`, uris: []string{"u1"}, expectedURI: "u1", expectedFound: true, expectedMatches: true}
	objectCreator := testStruct{testName: "objectCreator", annotation: `{"creator":{"id":"u2","name":"Jane"}}`, uris: []string{"u1", "u2"}, expectedURI: "u2", expectedFound: true, expectedName: "Jane", expectedMatches: true}
	otherCreator := testStruct{testName: "otherCreator", annotation: `{"creator":{"id":"u3","name":"Joe"}}`, uris: []string{"u1"}, expectedURI: "u3", expectedFound: true, expectedName: "Joe", expectedMatches: false}
	creatorWithoutID := testStruct{testName: "creatorWithoutID", annotation: `{"creator":{"name":"Anonymous"}}`, uris: []string{""}, expectedName: "Anonymous"}
	noCreator := testStruct{testName: "noCreator", annotation: `{}`, uris: []string{"u1"}}
	noCandidates := testStruct{testName: "noCandidates", annotation: `{"creator":"u1"}`, expectedURI: "u1", expectedFound: true}

	testScenarios := []testStruct{bareCreator, objectCreator, otherCreator, creatorWithoutID, noCreator, noCandidates}

	for _, scenario := range testScenarios {
		a := annotation(t, scenario.annotation)
		uri, found := CreatorURI(a)
		assert.Equal(t, scenario.expectedURI, uri, "Scenario: "+scenario.testName+" failed")
		assert.Equal(t, scenario.expectedFound, found, "Scenario: "+scenario.testName+" failed")
		assert.Equal(t, scenario.expectedName, CreatorName(a), "Scenario: "+scenario.testName+" failed")
		assert.Equal(t, scenario.expectedMatches, CreatorMatches(a, scenario.uris), "Scenario: "+scenario.testName+" failed")
	}
}

func TestCreatorHelpersWithoutAnnotation(t *testing.T) {
	uri, found := CreatorURI(nil)
	assert.False(t, found)
	assert.Empty(t, uri)
	assert.Empty(t, CreatorName(nil))
	assert.False(t, CreatorMatches(nil, []string{"u1"}))
}

func TestCreatorMarshalKeepsShape(t *testing.T) {
	out, err := json.Marshal(Annotation{Creator: CreatorFromURI("u1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"creator":"u1"}`, string(out))

	out, err = json.Marshal(Annotation{Creator: &Creator{ID: "u2", Name: "Jane"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"creator":{"id":"u2","name":"Jane"}}`, string(out))
}

func TestCreatorRejectsOtherValues(t *testing.T) {
	a := &Annotation{}
	assert.Error(t, json.Unmarshal([]byte(`{"creator":42}`), a))
}
