package encoding

var NewCounter = newCounter
