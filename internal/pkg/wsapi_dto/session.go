package wsapi_dto

// Session is the authenticated context of the WS-API client.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	TeamID   string `json:"team_id"`
	TeamCode string `json:"team_code"`
	RoleID   string `json:"role_id"`
	Language string `json:"language"`
	Timezone string `json:"timezone"`
}

// ParseSession reads the fields returned by session_init and session_get.
func ParseSession(fields map[string]string) *Session {
	first := func(keys ...string) string {
		for _, key := range keys {
			if value := fields[key]; value != "" {
				return value
			}
		}
		return ""
	}
	return &Session{
		Token:    first("token"),
		UserID:   first("user", "user_id"),
		Name:     first("name"),
		TeamID:   first("team_id", "team"),
		TeamCode: first("team_code"),
		RoleID:   first("role_id", "role"),
		Language: first("language"),
		Timezone: first("timezone"),
	}
}

// HasTeam reports whether team is the active team, by id or by code.
func (s *Session) HasTeam(team string) bool {
	return team == s.TeamID || (s.TeamCode != "" && team == s.TeamCode)
}
