package registry

import "github.com/goliatone/go-apidoc/pkg/typeref"

// coreAssembly is the pseudo-assembly the built-in primitives report as
// their origin, matching what the runtime itself would claim.
const coreAssembly = "System.Private.CoreLib.dll"

var coreTypes = map[string]string{
	"System.Object":         "class",
	"System.String":         "class",
	"System.Uri":            "class",
	"System.Byte[]":         "class",
	"System.Char":           "struct",
	"System.Boolean":        "struct",
	"System.Byte":           "struct",
	"System.SByte":          "struct",
	"System.Int16":          "struct",
	"System.UInt16":         "struct",
	"System.Int32":          "struct",
	"System.UInt32":         "struct",
	"System.Int64":          "struct",
	"System.UInt64":         "struct",
	"System.Single":         "struct",
	"System.Double":         "struct",
	"System.Decimal":        "struct",
	"System.DateTime":       "struct",
	"System.DateTimeOffset": "struct",
	"System.TimeSpan":       "struct",
	"System.Guid":           "struct",
}

// seedCoreLibrary installs the primitive table so references like
// T:System.String resolve without any metadata documents.
func (r *Registry) seedCoreLibrary() {
	r.assemblies = append(r.assemblies, coreAssembly)
	for name, kind := range coreTypes {
		r.types[name] = typeEntry{
			descriptor: typeref.TypeDescriptor{
				FullName: name,
				Assembly: coreAssembly,
				Kind:     kind,
			},
			fields: map[string]string{},
		}
	}
}
