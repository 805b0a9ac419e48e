package gcs

var ObjectNameForTest = objectName
