package sampledata

// managerPool provides manager and team names for generated leagues.
var managerPool = []struct {
	Manager string
	Team    string
}{
	{"Alice Chen", "Gridiron Gurus"},
	{"Bob Martinez", "End Zone Elite"},
	{"Cara Whitfield", "Pigskin Prophets"},
	{"Dan Osei", "Fourth Down Phantoms"},
	{"Elena Rossi", "Blitz Brigade"},
	{"Frank Delgado", "Hail Mary Heroes"},
	{"Grace Kim", "Touchdown Titans"},
	{"Hank Bauer", "Red Zone Raiders"},
	{"Ivy Nakamura", "Pocket Passers"},
	{"Jack O'Leary", "Flea Flicker Fanatics"},
	{"Kara Svensson", "Goal Line Giants"},
	{"Liam Porter", "Two Point Tricksters"},
}

// playerPool provides draftable players with positions and NFL teams.
var playerPool = []struct {
	Name     string
	Position string
	NFL      string
}{
	{"Josh Allen", "QB", "BUF"},
	{"Patrick Mahomes", "QB", "KC"},
	{"Lamar Jackson", "QB", "BAL"},
	{"Jalen Hurts", "QB", "PHI"},
	{"Joe Burrow", "QB", "CIN"},
	{"Christian McCaffrey", "RB", "SF"},
	{"Bijan Robinson", "RB", "ATL"},
	{"Saquon Barkley", "RB", "PHI"},
	{"Jahmyr Gibbs", "RB", "DET"},
	{"Derrick Henry", "RB", "BAL"},
	{"Breece Hall", "RB", "NYJ"},
	{"Jonathan Taylor", "RB", "IND"},
	{"De'Von Achane", "RB", "MIA"},
	{"Kyren Williams", "RB", "LAR"},
	{"Josh Jacobs", "RB", "GB"},
	{"Justin Jefferson", "WR", "MIN"},
	{"CeeDee Lamb", "WR", "DAL"},
	{"Ja'Marr Chase", "WR", "CIN"},
	{"Amon-Ra St. Brown", "WR", "DET"},
	{"Tyreek Hill", "WR", "MIA"},
	{"A.J. Brown", "WR", "PHI"},
	{"Puka Nacua", "WR", "LAR"},
	{"Garrett Wilson", "WR", "NYJ"},
	{"Chris Olave", "WR", "NO"},
	{"Drake London", "WR", "ATL"},
	{"DK Metcalf", "WR", "PIT"},
	{"Davante Adams", "WR", "LAR"},
	{"Nico Collins", "WR", "HOU"},
	{"Brandon Aiyuk", "WR", "SF"},
	{"Marvin Harrison Jr.", "WR", "ARI"},
	{"Travis Kelce", "TE", "KC"},
	{"Sam LaPorta", "TE", "DET"},
	{"Mark Andrews", "TE", "BAL"},
	{"Trey McBride", "TE", "ARI"},
	{"George Kittle", "TE", "SF"},
	{"Justin Tucker", "K", "BAL"},
	{"Harrison Butker", "K", "KC"},
	{"Brandon Aubrey", "K", "DAL"},
	{"49ers D/ST", "DEF", "SF"},
	{"Ravens D/ST", "DEF", "BAL"},
	{"Cowboys D/ST", "DEF", "DAL"},
	{"Jets D/ST", "DEF", "NYJ"},
}
