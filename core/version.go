package core

func Version() string {
	// equivalent semantic "go get" version: 1.x.y (z not used)
	return "0.1.0"
}
