package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"github.com/fatteme/MovieSwipe/internal/services/groups"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func createGroup(t *testing.T, token, name string) groups.GroupResponse {
	t.Helper()

	resp := doAuthed(t, http.MethodPost, "/groups", token, groups.CreateGroupRequest{Name: name})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var group groups.GroupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&group))
	return group
}

func joinGroup(t *testing.T, token, code string) groups.GroupResponse {
	t.Helper()

	resp := doAuthed(t, http.MethodPost, "/groups/join", token, groups.JoinGroupRequest{InvitationCode: code})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var group groups.GroupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&group))
	return group
}

func getGroupDoc(t *testing.T, groupId string) mongodb.GroupDb {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.GroupsCollection)
	var group mongodb.GroupDb
	err := coll.FindOne(ctx, bson.M{"_id": groupId}).Decode(&group)
	require.NoError(t, err, "error querying a group from db")

	return group
}
