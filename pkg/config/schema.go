package config

// Schema is the JSON schema for validating configuration files
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "bucket_name": {
            "type": "string",
            "minLength": 1,
            "description": "Name of the S3 bucket"
        },
        "directory": {
            "type": "string",
            "minLength": 1,
            "description": "Key prefix under which objects are stored"
        },
        "region": {
            "type": "string"
        },
        "access_key_id": {
            "type": "string"
        },
        "secret_access_key": {
            "type": "string"
        },
        "session_token": {
            "type": "string"
        },
        "profile": {
            "type": "string"
        },
        "max_retries": {
            "type": "integer",
            "minimum": 0
        },
        "timeout": {
            "type": "integer",
            "minimum": 1
        }
    },
    "required": ["bucket_name", "directory"],
    "additionalProperties": false
}`
