package graph

import (
	"fmt"

	"go-resume-backend/internal/domain"
)

// graphql-go hands input objects over as map[string]interface{}; these
// helpers pull the typed fields back out.

func optString(in map[string]interface{}, key string) *string {
	v, ok := in[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func reqString(in map[string]interface{}, key string) string {
	v, _ := in[key].(string)
	return v
}

func optBool(in map[string]interface{}, key string) *bool {
	v, ok := in[key].(bool)
	if !ok {
		return nil
	}
	return &v
}

func stringList(in map[string]interface{}, key string) []string {
	raw, ok := in[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func inputMap(arg interface{}) (map[string]interface{}, error) {
	in, ok := arg.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("malformed input object")
	}
	return in, nil
}

func candidateUpdateFromInput(arg interface{}) (domain.CandidateUpdate, error) {
	in, err := inputMap(arg)
	if err != nil {
		return domain.CandidateUpdate{}, err
	}
	return domain.CandidateUpdate{
		FirstName:   reqString(in, "firstName"),
		LastName:    reqString(in, "lastName"),
		Summary:     reqString(in, "summary"),
		LinkedInURL: reqString(in, "linkedInUrl"),
		GithubURL:   reqString(in, "githubUrl"),
	}, nil
}

func educationUpdateFromInput(arg interface{}) (domain.EducationUpdate, error) {
	in, err := inputMap(arg)
	if err != nil {
		return domain.EducationUpdate{}, err
	}
	return domain.EducationUpdate{
		Name:           reqString(in, "name"),
		StartDate:      optString(in, "startDate"),
		EndDate:        optString(in, "endDate"),
		Graduated:      optBool(in, "graduated"),
		AreaOfStudy:    reqString(in, "areaOfStudy"),
		EducationLevel: domain.EducationLevel(reqString(in, "educationLevel")),
	}, nil
}

func jobUpdateFromInput(arg interface{}) (domain.JobUpdate, error) {
	in, err := inputMap(arg)
	if err != nil {
		return domain.JobUpdate{}, err
	}
	return domain.JobUpdate{
		CompanyName:      reqString(in, "companyName"),
		Title:            reqString(in, "title"),
		StartDate:        optString(in, "startDate"),
		EndDate:          optString(in, "endDate"),
		Skills:           stringList(in, "skills"),
		Achievements:     stringList(in, "achievements"),
		CurrentlyWorking: optBool(in, "currentlyWorking"),
		ReasonForLeaving: reqString(in, "reasonForLeaving"),
	}, nil
}
