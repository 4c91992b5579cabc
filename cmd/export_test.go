package cmd

var CloseAndLog = closeAndLog
