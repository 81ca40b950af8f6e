package caller

var Parse = parse
