// Package pom extracts dependency coordinates from Maven POM documents.
//
// # Overview
//
// Only the project's direct dependency list is consumed:
//
//	<project>
//	  <dependencies>
//	    <dependency>
//	      <groupId>org.mariadb.jdbc</groupId>
//	      <artifactId>mariadb-java-client</artifactId>
//	      <version>3.3.3</version>
//	    </dependency>
//	  </dependencies>
//	</project>
//
// Everything else (properties, build, dependencyManagement, profiles) is
// ignored and never validated. Scope, optional and exclusions are not
// modeled; every listed dependency is returned.
//
// # Strictness
//
// [Dependencies] fails with a MANIFEST_PARSE_ERROR when the document is not
// well-formed XML, when the root element is not <project>, when there is no
// <dependencies> element, or when a dependency lacks groupId, artifactId or
// version. An empty <dependencies/> element yields an empty list. Only
// whitespace, comments and processing instructions may follow </project>.
//
// A leading XML declaration (<?xml ...?>) is stripped before decoding.
package pom
