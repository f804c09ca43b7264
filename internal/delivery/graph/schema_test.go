package graph_test

import (
	"context"
	"testing"

	"go-resume-backend/internal/delivery/graph"
	"go-resume-backend/internal/domain"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
)

// stubCandidateUC answers from a fixed map; unimplemented methods come
// from the embedded interface and are never reached in these tests.
type stubCandidateUC struct {
	domain.CandidateUsecase
	byOwner map[string][]domain.Candidate
}

func (s *stubCandidateUC) ListForUser(ctx context.Context, userID string) ([]domain.Candidate, error) {
	return s.byOwner[userID], nil
}

func (s *stubCandidateUC) GetForUser(ctx context.Context, userID, id string) (*domain.Candidate, error) {
	for _, c := range s.byOwner[userID] {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubCandidateUC) Create(ctx context.Context, userID string, upd domain.CandidateUpdate) (*domain.Candidate, error) {
	return &domain.Candidate{ID: "created", UserID: userID, FirstName: upd.FirstName, LastName: upd.LastName}, nil
}

func (s *stubCandidateUC) Delete(ctx context.Context, id, userID string) bool {
	return true
}

func newSchema(t *testing.T, candidateUC domain.CandidateUsecase) graphql.Schema {
	t.Helper()
	schema, err := graph.NewSchema(graph.NewResolver(candidateUC, nil, nil))
	assert.NoError(t, err)
	return schema
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestGraphQLQueries(t *testing.T) {
	uc := &stubCandidateUC{byOwner: map[string][]domain.Candidate{
		"user1": {{ID: "c1", UserID: "user1", FirstName: "Ada", LastName: "Lovelace"}},
	}}
	schema := newSchema(t, uc)

	t.Run("Should list only the caller's candidates", func(t *testing.T) {
		result := graphql.Do(graphql.Params{
			Schema:        schema,
			RequestString: `{ getCandidates { id firstName lastName } }`,
			Context:       authedCtx("user1"),
		})
		assert.Empty(t, result.Errors)

		data := result.Data.(map[string]interface{})
		list := data["getCandidates"].([]interface{})
		assert.Len(t, list, 1)
		first := list[0].(map[string]interface{})
		assert.Equal(t, "Ada", first["firstName"])
	})

	t.Run("Should error on a candidate the caller does not own", func(t *testing.T) {
		result := graphql.Do(graphql.Params{
			Schema:        schema,
			RequestString: `{ getCandidateById(id: "c1") { id } }`,
			Context:       authedCtx("someone-else"),
		})
		assert.NotEmpty(t, result.Errors)
	})

	t.Run("Should refuse an unauthenticated request", func(t *testing.T) {
		result := graphql.Do(graphql.Params{
			Schema:        schema,
			RequestString: `{ getCandidates { id } }`,
			Context:       context.Background(),
		})
		assert.NotEmpty(t, result.Errors)
	})
}

func TestGraphQLMutations(t *testing.T) {
	uc := &stubCandidateUC{byOwner: map[string][]domain.Candidate{}}
	schema := newSchema(t, uc)

	t.Run("Should create a candidate for the caller", func(t *testing.T) {
		result := graphql.Do(graphql.Params{
			Schema: schema,
			RequestString: `mutation {
				createCandidate(candidate: {firstName: "Ada", lastName: "Lovelace"}) {
					id userId firstName
				}
			}`,
			Context: authedCtx("user1"),
		})
		assert.Empty(t, result.Errors)

		data := result.Data.(map[string]interface{})
		created := data["createCandidate"].(map[string]interface{})
		assert.Equal(t, "user1", created["userId"])
		assert.Equal(t, "Ada", created["firstName"])
	})

	t.Run("Should report delete success as a boolean", func(t *testing.T) {
		result := graphql.Do(graphql.Params{
			Schema:        schema,
			RequestString: `mutation { deleteCandidate(id: "c1") }`,
			Context:       authedCtx("user1"),
		})
		assert.Empty(t, result.Errors)

		data := result.Data.(map[string]interface{})
		assert.Equal(t, true, data["deleteCandidate"])
	})
}
