// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlemit writes values as indented, YAML-style text.

Values describe themselves by implementing Serializable and calling exactly
one method of the Serializer they are handed. Scalars are written immediately;
containers are written through the adapter returned by the corresponding
Serialize* method and closed with End.

Output uses two spaces per nesting level:

	name: web
	ports:
	  - 80
	  - 443
	tags:[]

Empty containers nested under a key or dash follow it directly, as in
"tags:[]" above.

Only the emit direction exists; there is no parser in this package.
*/
package yamlemit
