package sampledata

// Config holds configuration for the sample data generator
type Config struct {
	OutDir    string // Directory receiving the data tree
	StartYear int    // First season year
	Seasons   int    // Number of seasons to generate
	Teams     int    // Managers per season
	Rounds    int    // Draft rounds per season
}

// Stats reports what a generator run produced.
type Stats struct {
	Seasons      int
	FilesWritten int
	DraftPicks   int
	Transactions int
}
