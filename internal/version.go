package internal

// Version is the xltranslate release version
const Version = "0.3.0"
