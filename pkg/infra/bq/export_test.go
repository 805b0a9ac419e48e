package bq

var EncodeRowForTest = encodeRow
