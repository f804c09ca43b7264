package graph

import (
	"context"
	"errors"

	"go-resume-backend/internal/domain"

	"github.com/graphql-go/graphql"
)

var (
	errUnauthenticated = errors.New("request is not authenticated")
	errNotFound        = errors.New("entity not found")
	errNotSaved        = errors.New("entity could not be saved")
)

// Resolver wires the query and mutation fields to the usecases. Identity
// comes from the request context placed there by the auth middleware.
type Resolver struct {
	candidateUC domain.CandidateUsecase
	educationUC domain.EducationUsecase
	jobUC       domain.JobUsecase
}

func NewResolver(candidateUC domain.CandidateUsecase, educationUC domain.EducationUsecase, jobUC domain.JobUsecase) *Resolver {
	return &Resolver{
		candidateUC: candidateUC,
		educationUC: educationUC,
		jobUC:       jobUC,
	}
}

func callerID(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	if userID == "" {
		return "", errUnauthenticated
	}
	return userID, nil
}

// NewSchema builds the executable schema. Every field requires an
// authenticated caller and is scoped to that caller's rows.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getCandidates": &graphql.Field{
				Type: graphql.NewList(candidateType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					return r.candidateUC.ListForUser(p.Context, userID)
				},
			},
			"getCandidateById": &graphql.Field{
				Type: candidateType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					candidate, err := r.candidateUC.GetForUser(p.Context, userID, p.Args["id"].(string))
					if err != nil {
						return nil, err
					}
					if candidate == nil {
						return nil, errNotFound
					}
					return candidate, nil
				},
			},
			"getEducations": &graphql.Field{
				Type: graphql.NewList(educationType),
				Args: graphql.FieldConfigArgument{
					"candidateId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					return r.educationUC.ListForUserAndCandidate(p.Context, userID, p.Args["candidateId"].(string))
				},
			},
			"getEducationById": &graphql.Field{
				Type: educationType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					education, err := r.educationUC.GetForUser(p.Context, userID, p.Args["id"].(string))
					if err != nil {
						return nil, err
					}
					if education == nil {
						return nil, errNotFound
					}
					return education, nil
				},
			},
			"getJobs": &graphql.Field{
				Type: graphql.NewList(jobType),
				Args: graphql.FieldConfigArgument{
					"candidateId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					return r.jobUC.ListForUserAndCandidate(p.Context, userID, p.Args["candidateId"].(string))
				},
			},
			"getJobById": &graphql.Field{
				Type: jobType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					job, err := r.jobUC.GetForUser(p.Context, userID, p.Args["id"].(string))
					if err != nil {
						return nil, err
					}
					if job == nil {
						return nil, errNotFound
					}
					return job, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCandidate": &graphql.Field{
				Type: candidateType,
				Args: graphql.FieldConfigArgument{
					"candidate": &graphql.ArgumentConfig{Type: graphql.NewNonNull(candidateInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					upd, err := candidateUpdateFromInput(p.Args["candidate"])
					if err != nil {
						return nil, err
					}
					candidate, err := r.candidateUC.Create(p.Context, userID, upd)
					if err != nil {
						return nil, err
					}
					if candidate == nil {
						return nil, errNotSaved
					}
					return candidate, nil
				},
			},
			"updateCandidate": &graphql.Field{
				Type: candidateType,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"candidate": &graphql.ArgumentConfig{Type: graphql.NewNonNull(candidateInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					upd, err := candidateUpdateFromInput(p.Args["candidate"])
					if err != nil {
						return nil, err
					}
					candidate, err := r.candidateUC.Update(p.Context, p.Args["id"].(string), userID, upd)
					if err != nil {
						return nil, err
					}
					if candidate == nil {
						return nil, errNotSaved
					}
					return candidate, nil
				},
			},
			"deleteCandidate": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					return r.candidateUC.Delete(p.Context, p.Args["id"].(string), userID), nil
				},
			},
			"createEducation": &graphql.Field{
				Type: educationType,
				Args: graphql.FieldConfigArgument{
					"candidateId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"education":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(educationInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					upd, err := educationUpdateFromInput(p.Args["education"])
					if err != nil {
						return nil, err
					}
					education, err := r.educationUC.Create(p.Context, userID, p.Args["candidateId"].(string), upd)
					if err != nil {
						return nil, err
					}
					if education == nil {
						return nil, errNotSaved
					}
					return education, nil
				},
			},
			"updateEducation": &graphql.Field{
				Type: educationType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"candidateId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"education":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(educationInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					upd, err := educationUpdateFromInput(p.Args["education"])
					if err != nil {
						return nil, err
					}
					education, err := r.educationUC.Update(p.Context, p.Args["id"].(string), userID, p.Args["candidateId"].(string), upd)
					if err != nil {
						return nil, err
					}
					if education == nil {
						return nil, errNotSaved
					}
					return education, nil
				},
			},
			"deleteEducation": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					return r.educationUC.Delete(p.Context, p.Args["id"].(string), userID), nil
				},
			},
			"createJob": &graphql.Field{
				Type: jobType,
				Args: graphql.FieldConfigArgument{
					"candidateId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"job":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(jobInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					upd, err := jobUpdateFromInput(p.Args["job"])
					if err != nil {
						return nil, err
					}
					job, err := r.jobUC.Create(p.Context, userID, p.Args["candidateId"].(string), upd)
					if err != nil {
						return nil, err
					}
					if job == nil {
						return nil, errNotSaved
					}
					return job, nil
				},
			},
			"updateJob": &graphql.Field{
				Type: jobType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"candidateId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"job":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(jobInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					upd, err := jobUpdateFromInput(p.Args["job"])
					if err != nil {
						return nil, err
					}
					job, err := r.jobUC.Update(p.Context, p.Args["id"].(string), userID, p.Args["candidateId"].(string), upd)
					if err != nil {
						return nil, err
					}
					if job == nil {
						return nil, errNotSaved
					}
					return job, nil
				},
			},
			"deleteJob": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, err := callerID(p.Context)
					if err != nil {
						return nil, err
					}
					return r.jobUC.Delete(p.Context, p.Args["id"].(string), userID), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
