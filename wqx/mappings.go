package wqx

// NamespaceWQX is the WQX 2.0 Outbound namespace URI. Documents in
// other namespaces yield no Organization context nodes and therefore
// empty tables.
const NamespaceWQX = "http://qwwebservices.usgs.gov/schemas/WQX-Outbound/2_0/"

// Nodeset expressions selecting context nodes. The org expression is
// absolute: every record in an Outbound WQX document belongs to an
// Organization. Station and activity expressions are relative to a
// given org node; the result expression is relative to a given
// activity node. Steps match by local name; the WQX namespace is
// asserted once, on the document root.
var contextExprs = map[ContextKind]string{
	KindOrg:      `/WQX[namespace-uri()='` + NamespaceWQX + `']/Organization`,
	KindStation:  `MonitoringLocation`,
	KindActivity: `Activity`,
	KindResult:   `Result`,
}

// contextParents records the nesting relation of the logical node
// kinds. Org is scoped to the document root.
var contextParents = map[ContextKind]ContextKind{
	KindStation:  KindOrg,
	KindActivity: KindOrg,
	KindResult:   KindActivity,
}

// Kinds whose column scopes are excluded from a table type's schema.
// A station row never draws on activity or result scopes, and a
// result row never draws on the station scope. This is how column
// names shared across unrelated scopes (MonitoringLocationIdentifier
// appears under both station and activity) are disambiguated.
var contextExclusions = map[TableType][]ContextKind{
	TableStation: {KindActivity, KindResult},
	TableResult:  {KindStation},
}

// The ordered column names of the tabular form of a Water Quality
// Portal /Station/search dataset. Downstream CSV consumers depend on
// both column identity and column order.
var stationColumns = []string{
	"OrganizationIdentifier",
	"OrganizationFormalName",
	"MonitoringLocationIdentifier",
	"MonitoringLocationName",
	"MonitoringLocationTypeName",
	"MonitoringLocationDescriptionText",
	"HUCEightDigitCode",
	"DrainageAreaMeasure/MeasureValue",
	"DrainageAreaMeasure/MeasureUnitCode",
	"ContributingDrainageAreaMeasure/MeasureValue",
	"ContributingDrainageAreaMeasure/MeasureUnitCode",
	"LatitudeMeasure",
	"LongitudeMeasure",
	"SourceMapScaleNumeric",
	"HorizontalAccuracyMeasure/MeasureValue",
	"HorizontalAccuracyMeasure/MeasureUnitCode",
	"HorizontalCollectionMethodName",
	"HorizontalCoordinateReferenceSystemDatumName",
	"VerticalMeasure/MeasureValue",
	"VerticalMeasure/MeasureUnitCode",
	"VerticalAccuracyMeasure/MeasureValue",
	"VerticalAccuracyMeasure/MeasureUnitCode",
	"VerticalCollectionMethodName",
	"VerticalCoordinateReferenceSystemDatumName",
	"CountryCode",
	"StateCode",
	"CountyCode",
	"AquiferName",
	"FormationTypeText",
	"AquiferTypeName",
	"ConstructionDateText",
	"WellDepthMeasure/MeasureValue",
	"WellDepthMeasure/MeasureUnitCode",
	"WellHoleDepthMeasure/MeasureValue",
	"WellHoleDepthMeasure/MeasureUnitCode",
}

// The ordered column names of the tabular form of a Water Quality
// Portal /Result/search dataset.
var resultColumns = []string{
	"OrganizationIdentifier",
	"OrganizationFormalName",
	"ActivityIdentifier",
	"ActivityTypeCode",
	"ActivityMediaName",
	"ActivityMediaSubdivisionName",
	"ActivityStartDate",
	"ActivityStartTime/Time",
	"ActivityStartTime/TimeZoneCode",
	"ActivityEndDate",
	"ActivityEndTime/Time",
	"ActivityEndTime/TimeZoneCode",
	"ActivityDepthHeightMeasure/MeasureValue",
	"ActivityDepthHeightMeasure/MeasureUnitCode",
	"ActivityDepthAltitudeReferencePointText",
	"ActivityTopDepthHeightMeasure/MeasureValue",
	"ActivityTopDepthHeightMeasure/MeasureUnitCode",
	"ActivityBottomDepthHeightMeasure/MeasureValue",
	"ActivityBottomDepthHeightMeasure/MeasureUnitCode",
	"ProjectIdentifier",
	"ActivityConductingOrganizationText",
	"MonitoringLocationIdentifier",
	"ActivityCommentText",
	"SampleAquifer",
	"HydrologicCondition",
	"HydrologicEvent",
	"SampleCollectionMethod/MethodIdentifier",
	"SampleCollectionMethod/MethodIdentifierContext",
	"SampleCollectionMethod/MethodName",
	"SampleCollectionEquipmentName",
	"ResultDetectionConditionText",
	"CharacteristicName",
	"ResultSampleFractionText",
	"ResultMeasureValue",
	"ResultMeasure/MeasureUnitCode",
	"MeasureQualifierCode",
	"ResultStatusIdentifier",
	"StatisticalBaseCode",
	"ResultValueTypeName",
	"ResultWeightBasisText",
	"ResultTimeBasisText",
	"ResultTemperatureBasisText",
	"ResultParticleSizeBasisText",
	"PrecisionValue",
	"ResultCommentText",
	"USGSPCode",
	"ResultDepthHeightMeasure/MeasureValue",
	"ResultDepthHeightMeasure/MeasureUnitCode",
	"ResultDepthAltitudeReferencePointText",
	"SubjectTaxonomicName",
	"SampleTissueAnatomyName",
	"ResultAnalyticalMethod/MethodIdentifier",
	"ResultAnalyticalMethod/MethodIdentifierContext",
	"ResultAnalyticalMethod/MethodName",
	"MethodDescriptionText",
	"LaboratoryName",
	"AnalysisStartDate",
	"ResultLaboratoryCommentText",
	"DetectionQuantitationLimitTypeName",
	"DetectionQuantitationLimitMeasure/MeasureValue",
	"DetectionQuantitationLimitMeasure/MeasureUnitCode",
	"PreparationStartDate",
}

// Column value paths shared by every row descended from an
// Organization node. These columns are identical in the station and
// result mappings. Paths are relative to a single Organization node.
var orgPaths = map[string]string{
	"OrganizationIdentifier": "OrganizationDescription/OrganizationIdentifier",
	"OrganizationFormalName": "OrganizationDescription/OrganizationFormalName",
}

// Column value paths relative to a MonitoringLocation node. These
// apply to station mappings and not to results.
var stationPaths = map[string]string{
	"MonitoringLocationIdentifier":                    "MonitoringLocationIdentity/MonitoringLocationIdentifier",
	"MonitoringLocationName":                          "MonitoringLocationIdentity/MonitoringLocationName",
	"MonitoringLocationTypeName":                      "MonitoringLocationIdentity/MonitoringLocationTypeName",
	"MonitoringLocationDescriptionText":               "MonitoringLocationIdentity/MonitoringLocationDescriptionText",
	"HUCEightDigitCode":                               "MonitoringLocationIdentity/HUCEightDigitCode",
	"DrainageAreaMeasure/MeasureValue":                "MonitoringLocationIdentity/DrainageAreaMeasure/MeasureValue",
	"DrainageAreaMeasure/MeasureUnitCode":             "MonitoringLocationIdentity/DrainageAreaMeasure/MeasureUnitCode",
	"ContributingDrainageAreaMeasure/MeasureValue":    "MonitoringLocationIdentity/ContributingDrainageAreaMeasure/MeasureValue",
	"ContributingDrainageAreaMeasure/MeasureUnitCode": "MonitoringLocationIdentity/ContributingDrainageAreaMeasure/MeasureUnitCode",
	"LatitudeMeasure":                                 "MonitoringLocationGeospatial/LatitudeMeasure",
	"LongitudeMeasure":                                "MonitoringLocationGeospatial/LongitudeMeasure",
	"SourceMapScaleNumeric":                           "MonitoringLocationGeospatial/SourceMapScaleNumeric",
	"HorizontalAccuracyMeasure/MeasureValue":          "MonitoringLocationGeospatial/HorizontalAccuracyMeasure/MeasureValue",
	"HorizontalAccuracyMeasure/MeasureUnitCode":       "MonitoringLocationGeospatial/HorizontalAccuracyMeasure/MeasureUnitCode",
	"HorizontalCollectionMethodName":                  "MonitoringLocationGeospatial/HorizontalCollectionMethodName",
	"HorizontalCoordinateReferenceSystemDatumName":    "MonitoringLocationGeospatial/HorizontalCoordinateReferenceSystemDatumName",
	"VerticalMeasure/MeasureValue":                    "MonitoringLocationGeospatial/VerticalMeasure/MeasureValue",
	"VerticalMeasure/MeasureUnitCode":                 "MonitoringLocationGeospatial/VerticalMeasure/MeasureUnitCode",
	"VerticalAccuracyMeasure/MeasureValue":            "MonitoringLocationGeospatial/VerticalAccuracyMeasure/MeasureValue",
	"VerticalAccuracyMeasure/MeasureUnitCode":         "MonitoringLocationGeospatial/VerticalAccuracyMeasure/MeasureUnitCode",
	"VerticalCollectionMethodName":                    "MonitoringLocationGeospatial/VerticalCollectionMethodName",
	"VerticalCoordinateReferenceSystemDatumName":      "MonitoringLocationGeospatial/VerticalCoordinateReferenceSystemDatumName",
	"CountryCode":                                     "MonitoringLocationGeospatial/CountryCode",
	"StateCode":                                       "MonitoringLocationGeospatial/StateCode",
	"CountyCode":                                      "MonitoringLocationGeospatial/CountyCode",
	"AquiferName":                                     "WellInformation/AquiferName",
	"FormationTypeText":                               "WellInformation/FormationTypeText",
	"AquiferTypeName":                                 "WellInformation/AquiferTypeName",
	"ConstructionDateText":                            "WellInformation/ConstructionDateText",
	"WellDepthMeasure/MeasureValue":                   "WellInformation/WellDepthMeasure/MeasureValue",
	"WellDepthMeasure/MeasureUnitCode":                "WellInformation/WellDepthMeasure/MeasureUnitCode",
	"WellHoleDepthMeasure/MeasureValue":               "WellInformation/WellHoleDepthMeasure/MeasureValue",
	"WellHoleDepthMeasure/MeasureUnitCode":            "WellInformation/WellHoleDepthMeasure/MeasureUnitCode",
}

// Column value paths relative to an Activity node, shared by every
// result row descended from it. These apply to result mappings and
// not to stations.
var activityPaths = map[string]string{
	"ActivityIdentifier":                               "ActivityDescription/ActivityIdentifier",
	"ActivityTypeCode":                                 "ActivityDescription/ActivityTypeCode",
	"ActivityMediaName":                                "ActivityDescription/ActivityMediaName",
	"ActivityMediaSubdivisionName":                     "ActivityDescription/ActivityMediaSubdivisionName",
	"ActivityStartDate":                                "ActivityDescription/ActivityStartDate",
	"ActivityStartTime/Time":                           "ActivityDescription/ActivityStartTime/Time",
	"ActivityStartTime/TimeZoneCode":                   "ActivityDescription/ActivityStartTime/TimeZoneCode",
	"ActivityEndDate":                                  "ActivityDescription/ActivityEndDate",
	"ActivityEndTime/Time":                             "ActivityDescription/ActivityEndTime/Time",
	"ActivityEndTime/TimeZoneCode":                     "ActivityDescription/ActivityEndTime/TimeZoneCode",
	"ActivityDepthHeightMeasure/MeasureValue":          "ActivityDescription/ActivityDepthHeightMeasure/MeasureValue",
	"ActivityDepthHeightMeasure/MeasureUnitCode":       "ActivityDescription/ActivityDepthHeightMeasure/MeasureUnitCode",
	"ActivityDepthAltitudeReferencePointText":          "ActivityDescription/ActivityDepthAltitudeReferencePointText",
	"ActivityTopDepthHeightMeasure/MeasureValue":       "ActivityDescription/ActivityTopDepthHeightMeasure/MeasureValue",
	"ActivityTopDepthHeightMeasure/MeasureUnitCode":    "ActivityDescription/ActivityTopDepthHeightMeasure/MeasureUnitCode",
	"ActivityBottomDepthHeightMeasure/MeasureValue":    "ActivityDescription/ActivityBottomDepthHeightMeasure/MeasureValue",
	"ActivityBottomDepthHeightMeasure/MeasureUnitCode": "ActivityDescription/ActivityBottomDepthHeightMeasure/MeasureUnitCode",
	"ProjectIdentifier":                                "ActivityDescription/ProjectIdentifier",
	"ActivityConductingOrganizationText":               "ActivityDescription/ActivityConductingOrganizationText",
	"MonitoringLocationIdentifier":                     "ActivityDescription/MonitoringLocationIdentifier",
	"ActivityCommentText":                              "ActivityDescription/ActivityCommentText",
	"SampleAquifer":                                    "ActivityDescription/SampleAquifer",
	"HydrologicCondition":                              "ActivityDescription/HydrologicCondition",
	"HydrologicEvent":                                  "ActivityDescription/HydrologicEvent",
	"SampleCollectionMethod/MethodIdentifier":          "SampleDescription/SampleCollectionMethod/MethodIdentifier",
	"SampleCollectionMethod/MethodIdentifierContext":   "SampleDescription/SampleCollectionMethod/MethodIdentifierContext",
	"SampleCollectionMethod/MethodName":                "SampleDescription/SampleCollectionMethod/MethodName",
	"SampleCollectionEquipmentName":                    "SampleDescription/SampleCollectionEquipmentName",
}

// Column value paths relative to a Result node.
var resultPaths = map[string]string{
	"ResultDetectionConditionText":                      "ResultDescription/ResultDetectionConditionText",
	"CharacteristicName":                                "ResultDescription/CharacteristicName",
	"ResultSampleFractionText":                          "ResultDescription/ResultSampleFractionText",
	"ResultMeasureValue":                                "ResultDescription/ResultMeasure/ResultMeasureValue",
	"ResultMeasure/MeasureUnitCode":                     "ResultDescription/ResultMeasure/MeasureUnitCode",
	"MeasureQualifierCode":                              "ResultDescription/ResultMeasure/MeasureQualifierCode",
	"ResultStatusIdentifier":                            "ResultDescription/ResultStatusIdentifier",
	"StatisticalBaseCode":                               "ResultDescription/StatisticalBaseCode",
	"ResultValueTypeName":                               "ResultDescription/ResultValueTypeName",
	"ResultWeightBasisText":                             "ResultDescription/ResultWeightBasisText",
	"ResultTimeBasisText":                               "ResultDescription/ResultTimeBasisText",
	"ResultTemperatureBasisText":                        "ResultDescription/ResultTemperatureBasisText",
	"ResultParticleSizeBasisText":                       "ResultDescription/ResultParticleSizeBasisText",
	"PrecisionValue":                                    "ResultDescription/DataQuality/PrecisionValue",
	"ResultCommentText":                                 "ResultDescription/ResultCommentText",
	"USGSPCode":                                         "ResultDescription/USGSPCode",
	"ResultDepthHeightMeasure/MeasureValue":             "ResultDescription/ResultDepthHeightMeasure/MeasureValue",
	"ResultDepthHeightMeasure/MeasureUnitCode":          "ResultDescription/ResultDepthHeightMeasure/MeasureUnitCode",
	"ResultDepthAltitudeReferencePointText":             "ResultDescription/ResultDepthAltitudeReferencePointText",
	"SubjectTaxonomicName":                              "BiologicalResultDescription/SubjectTaxonomicName",
	"SampleTissueAnatomyName":                           "BiologicalResultDescription/SampleTissueAnatomyName",
	"ResultAnalyticalMethod/MethodIdentifier":           "ResultAnalyticalMethod/MethodIdentifier",
	"ResultAnalyticalMethod/MethodIdentifierContext":    "ResultAnalyticalMethod/MethodIdentifierContext",
	"ResultAnalyticalMethod/MethodName":                 "ResultAnalyticalMethod/MethodName",
	"MethodDescriptionText":                             "ResultAnalyticalMethod/MethodDescriptionText",
	"LaboratoryName":                                    "ResultLabInformation/LaboratoryName",
	"AnalysisStartDate":                                 "ResultLabInformation/AnalysisStartDate",
	"ResultLaboratoryCommentText":                       "ResultLabInformation/ResultLaboratoryCommentText",
	"DetectionQuantitationLimitTypeName":                "ResultLabInformation/ResultDetectionQuantitationLimit/DetectionQuantitationLimitTypeName",
	"DetectionQuantitationLimitMeasure/MeasureValue":    "ResultLabInformation/ResultDetectionQuantitationLimit/DetectionQuantitationLimitMeasure/MeasureValue",
	"DetectionQuantitationLimitMeasure/MeasureUnitCode": "ResultLabInformation/ResultDetectionQuantitationLimit/DetectionQuantitationLimitMeasure/MeasureUnitCode",
	"PreparationStartDate":                              "LabSamplePreparation/PreparationStartDate",
}

var tableColumns = map[TableType][]string{
	TableStation: stationColumns,
	TableResult:  resultColumns,
}

var kindPaths = map[ContextKind]map[string]string{
	KindOrg:      orgPaths,
	KindStation:  stationPaths,
	KindActivity: activityPaths,
	KindResult:   resultPaths,
}
