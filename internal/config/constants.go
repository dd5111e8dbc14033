package config

const (
	DefaultPort = 8189
	DefaultHost = "127.0.0.1"

	// AppDirName is the directory created under the user config dir
	// when DATABASE_PATH is not set.
	AppDirName = "wordbook"
	// DatabaseFileName is the SQLite file inside AppDirName.
	DatabaseFileName = "database.sqlite"

	DefaultDictionaryBaseURL   = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultDictionaryUserAgent = "Wordbook/1.0"
)
