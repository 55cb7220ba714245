package main

const APP_NAME = "TaskPomodoro"
const APP_ID = "com.taskpomodoro.app"

var version = "dev" // set via ldflags at build time
