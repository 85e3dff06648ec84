package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryFromLocalID(t *testing.T) {
	repo, err := Repository([]byte(customerEntity), nil, "com.acme.repository")
	require.NoError(t, err)

	assert.Equal(t, "CustomerRepository", repo.Name)
	assert.Equal(t, "com.acme.repository", repo.Package)

	want := `package com.acme.repository;

import com.acme.model.Customer;
import org.springframework.data.jpa.repository.JpaRepository;
import org.springframework.stereotype.Repository;

@Repository
public interface CustomerRepository extends JpaRepository<Customer, Long> {}
`
	assert.Equal(t, want, repo.Content)
}

func TestRepositoryDefaultsToEntityPackage(t *testing.T) {
	repo, err := Repository([]byte(customerEntity), nil, "")
	require.NoError(t, err)

	assert.Equal(t, "com.acme.model", repo.Package)
	assert.NotContains(t, repo.Content, "import com.acme.model.Customer;")
}

func TestRepositoryIDFromSuperclass(t *testing.T) {
	entity := `package com.acme.model;

import com.acme.base.BaseEntity;
import jakarta.persistence.Entity;

@Entity
public class Invoice extends BaseEntity {
    private String number;
}
`
	superclass := `package com.acme.base;

import jakarta.persistence.Id;
import jakarta.persistence.MappedSuperclass;
import java.util.UUID;

@MappedSuperclass
public abstract class BaseEntity {
    @Id
    private UUID id;
}
`
	repo, err := Repository([]byte(entity), []byte(superclass), "")
	require.NoError(t, err)

	assert.Contains(t, repo.Content, "import java.util.UUID;")
	assert.Contains(t, repo.Content, "extends JpaRepository<Invoice, UUID> {}")
}

func TestRepositoryMissingIdentifier(t *testing.T) {
	entity := `package com.acme.model;

import jakarta.persistence.Entity;

@Entity
public class Tag {
    private String name;
}
`
	_, err := Repository([]byte(entity), nil, "")
	var missing *MissingIdentifierError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Tag", missing.Entity)

	// A superclass without an @Id does not help.
	superclass := "package com.acme.base;\n\npublic abstract class Base {}\n"
	_, err = Repository([]byte(entity), []byte(superclass), "")
	require.ErrorAs(t, err, &missing)
}
