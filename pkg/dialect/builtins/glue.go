package builtins

import "github.com/sqlmorph/sqlmorph/pkg/dialect"

// Glue is the AWS Hive-metastore-compatible catalog; it extends Hive's
// quoting and keyword set unchanged. It is built and registered in
// hive.go's init, right after Hive itself.
var Glue *dialect.Dialect
