package internal

// Version is the current quizdeck release version.
const Version = "1.0.0"
