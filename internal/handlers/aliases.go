package handlers

import "strings"

// Clients reach this API from several frontend revisions that never agreed on
// field names. Each logical input has one alias table, resolved in order, so
// the alias policy lives in one place.
var (
	fileFieldAliases    = []string{"file", "resume", "pdf", "document", "upload"}
	base64FieldAliases  = []string{"file", "resume", "pdf", "data", "content"}
	resumeSkillsAliases = []string{"resume_skills", "skills", "resumeSkills"}
	jdSkillsAliases     = []string{"jd_skills", "jdSkills"}
	jobDescAliases      = []string{"job_description", "jobDescription", "description"}
	resumeTextAliases   = []string{"resume_text", "resumeText", "text", "extractedText"}
)

// resolveString returns the first non-empty string value among the aliases.
func resolveString(data map[string]interface{}, aliases []string) string {
	for _, key := range aliases {
		if v, ok := data[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// resolveSkills returns the first alias holding a skill list. A JSON array is
// taken element-wise; a plain string is split on commas.
func resolveSkills(data map[string]interface{}, aliases []string) []string {
	for _, key := range aliases {
		v, ok := data[key]
		if !ok {
			continue
		}
		switch list := v.(type) {
		case []interface{}:
			skills := make([]string, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					skills = append(skills, strings.TrimSpace(s))
				}
			}
			if len(skills) > 0 {
				return skills
			}
		case string:
			var skills []string
			for _, s := range strings.Split(list, ",") {
				if s = strings.TrimSpace(s); s != "" {
					skills = append(skills, s)
				}
			}
			if len(skills) > 0 {
				return skills
			}
		}
	}
	return nil
}

func receivedKeys(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	return keys
}
