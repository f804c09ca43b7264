package graph

import "github.com/graphql-go/graphql"

var candidateType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Candidate",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":      &graphql.Field{Type: graphql.String},
		"firstName":   &graphql.Field{Type: graphql.String},
		"lastName":    &graphql.Field{Type: graphql.String},
		"summary":     &graphql.Field{Type: graphql.String},
		"linkedInUrl": &graphql.Field{Type: graphql.String},
		"githubUrl":   &graphql.Field{Type: graphql.String},
	},
})

var educationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Education",
	Fields: graphql.Fields{
		"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":         &graphql.Field{Type: graphql.String},
		"candidateId":    &graphql.Field{Type: graphql.String},
		"name":           &graphql.Field{Type: graphql.String},
		"startDate":      &graphql.Field{Type: graphql.String},
		"endDate":        &graphql.Field{Type: graphql.String},
		"graduated":      &graphql.Field{Type: graphql.Boolean},
		"areaOfStudy":    &graphql.Field{Type: graphql.String},
		"educationLevel": &graphql.Field{Type: graphql.String},
	},
})

var jobType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Job",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"userId":           &graphql.Field{Type: graphql.String},
		"candidateId":      &graphql.Field{Type: graphql.String},
		"companyName":      &graphql.Field{Type: graphql.String},
		"title":            &graphql.Field{Type: graphql.String},
		"startDate":        &graphql.Field{Type: graphql.String},
		"endDate":          &graphql.Field{Type: graphql.String},
		"skills":           &graphql.Field{Type: graphql.NewList(graphql.String)},
		"achievements":     &graphql.Field{Type: graphql.NewList(graphql.String)},
		"currentlyWorking": &graphql.Field{Type: graphql.Boolean},
		"reasonForLeaving": &graphql.Field{Type: graphql.String},
	},
})

var candidateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CandidateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"summary":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"linkedInUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"githubUrl":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var educationInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EducationInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"startDate":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"endDate":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"graduated":      &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"areaOfStudy":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"educationLevel": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var jobInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "JobInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"companyName":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"title":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"startDate":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"endDate":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"skills":           &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		"achievements":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		"currentlyWorking": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
		"reasonForLeaving": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})
