package collections

import jsoniter "github.com/json-iterator/go"

// json is used for every serialisation in this package. Map keys come out
// sorted, which keeps ToJSON and Fingerprint output deterministic.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
