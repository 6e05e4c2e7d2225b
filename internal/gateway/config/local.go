package config

func defaultConfig() Config {
	return Config{
		Port:          ":5000",
		Env:           "local",
		LogLevel:      "info",
		PublicBaseURL: "http://localhost:5000",
		SQLitePath:    "data/astro_guide.db",
		Python: PythonConfig{
			Path: "python3",
		},
		Artifact: ArtifactConfig{
			Backend: "auto",
			Dir:     "data",
			Region:  "us-east-1",
			Bucket:  "astroguide-charts",
			UseSSL:  true,
		},
	}
}
